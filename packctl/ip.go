package packctl

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/katalvlaran/packsat/ipmodel"
	"github.com/katalvlaran/packsat/shape"
)

// runIP writes inst's IP/MPS formulation (spec.md §4.H) to a temp file
// and shells out to the external cbc solver, mirroring
// original_source/packing_ip.py's optimize
// (subprocess.check_call(['cbc', mps_file.name])). cbc's own stdout
// carries the solved objective/variable assignment; packctl does not
// parse it back, matching the original's fire-and-print behavior.
func runIP(inst shape.Instance) error {
	if _, err := exec.LookPath("cbc"); err != nil {
		return ipmodel.ErrCBCUnavailable
	}

	enc, err := ipmodel.New(inst)
	if err != nil {
		return fmt.Errorf("packctl: build IP model: %w", err)
	}

	f, err := os.CreateTemp("", "packsat-*.mps")
	if err != nil {
		return fmt.Errorf("packctl: create MPS temp file: %w", err)
	}
	defer os.Remove(f.Name())

	if err := enc.WriteMPS(f); err != nil {
		f.Close()
		return fmt.Errorf("packctl: write MPS: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("packctl: close MPS file: %w", err)
	}

	cmd := exec.Command("cbc", f.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("packctl: cbc: %w", err)
	}
	return nil
}
