package scanner

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// fdBinaries maps GOOS/GOARCH to the name of a bundled fd binary that
// may ship next to the executable under fd-bin/.
var fdBinaries = map[string]string{
	"linux/amd64":   "fd-linux-x86_64",
	"linux/arm64":   "fd-linux-aarch64",
	"darwin/amd64":  "fd-darwin-x86_64",
	"darwin/arm64":  "fd-darwin-aarch64",
	"windows/amd64": "fd-windows-x86_64.exe",
}

// ErrUnsupportedPlatform indicates no fd binary is available for the
// current OS/architecture and none was found on PATH.
var ErrUnsupportedPlatform = fmt.Errorf("no fd binary for %s/%s", runtime.GOOS, runtime.GOARCH)

// FindFD locates an fd executable: first a bundled binary next to the
// running executable, then a system-wide fd on PATH.
func FindFD() (string, error) {
	name, supported := fdBinaries[runtime.GOOS+"/"+runtime.GOARCH]
	if supported {
		if exe, err := os.Executable(); err == nil {
			bundled := filepath.Join(filepath.Dir(exe), "fd-bin", name)
			if info, err := os.Stat(bundled); err == nil && !info.IsDir() {
				return bundled, nil
			}
		}
	}

	if path, err := exec.LookPath("fd"); err == nil {
		return path, nil
	}

	if !supported {
		return "", ErrUnsupportedPlatform
	}
	return "", fmt.Errorf("fd not found next to the executable or on PATH")
}

// ScanWithFD runs fd over root and parses its newline-separated output.
// fd does not report modification times, so the entries carry none.
func ScanWithFD(fdPath, root string, onFile func(FileEntry)) error {
	cmd := exec.Command(fdPath, "--type", "f", "--absolute-path", "--hidden", ".", root)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}

	sc := bufio.NewScanner(stdout)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		onFile(FileEntry{Path: filepath.Clean(line)})
	}
	scanErr := sc.Err()

	if err := cmd.Wait(); err != nil {
		msg := bytes.TrimSpace(stderr.Bytes())
		if len(msg) > 0 {
			return fmt.Errorf("fd failed on %s: %w: %s", root, err, msg)
		}
		return fmt.Errorf("fd failed on %s: %w", root, err)
	}
	return scanErr
}
