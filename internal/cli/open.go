package cli

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// startCommand launches a detached process. Tests replace it.
var startCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// openCommand returns the program that opens dir in the platform's file
// browser.
func openCommand(goos, dir string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{dir}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{dir}, nil
	case "windows":
		return "explorer", []string{dir}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// openDir opens dir in the system file browser without waiting for it.
func openDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	name, args, err := openCommand(runtime.GOOS, dir)
	if err != nil {
		return err
	}
	return startCommand(name, args...)
}
