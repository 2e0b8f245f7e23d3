package media

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// ErrToolNotFound is returned when no ffmpeg executable can be located.
var ErrToolNotFound = errors.New("ffmpeg not found")

// toolNames maps GOOS/GOARCH to the bundled ffmpeg file name, which carries
// the target triple of the platform it was built for.
var toolNames = map[string]string{
	"windows/amd64": "ffmpeg-x86_64-pc-windows-msvc.exe",
	"windows/arm64": "ffmpeg-aarch64-pc-windows-msvc.exe",
	"darwin/arm64":  "ffmpeg-aarch64-apple-darwin",
	"darwin/amd64":  "ffmpeg-x86_64-apple-darwin",
	"linux/amd64":   "ffmpeg-x86_64-unknown-linux-gnu",
	"linux/arm64":   "ffmpeg-aarch64-unknown-linux-gnu",
}

// ToolName returns the bundled executable name for the given platform.
func ToolName(goos, goarch string) string {
	if name, ok := toolNames[goos+"/"+goarch]; ok {
		return name
	}
	if goos == "windows" {
		return "ffmpeg.exe"
	}
	return "ffmpeg"
}

// Compile-time check that Locator implements ToolResolver.
var _ ToolResolver = (*Locator)(nil)

// Locator resolves the ffmpeg executable. An explicit override wins;
// otherwise the development binaries folder is preferred over the packaged
// resource folder.
type Locator struct {
	// Override is an explicit path or a command name looked up in PATH.
	Override string
	// DevDir is the development-tree binaries folder.
	DevDir string
	// ResourceDir is the packaged resource root; the tool lives in its binaries/ subfolder.
	ResourceDir string
	// Name is the executable file name looked up in DevDir and ResourceDir.
	Name string
}

// NewLocator creates a Locator for the running platform.
func NewLocator(override, devDir, resourceDir string) *Locator {
	return &Locator{
		Override:    override,
		DevDir:      devDir,
		ResourceDir: resourceDir,
		Name:        ToolName(runtime.GOOS, runtime.GOARCH),
	}
}

// Resolve returns the absolute path of the executable.
func (l *Locator) Resolve() (string, error) {
	if l.Override != "" {
		if isFile(l.Override) {
			return filepath.Abs(l.Override)
		}
		if p, err := exec.LookPath(l.Override); err == nil {
			return p, nil
		}
		return "", fmt.Errorf("%w: %s does not exist", ErrToolNotFound, l.Override)
	}

	var tried []string

	if l.DevDir != "" {
		devPath, err := filepath.Abs(filepath.Join(l.DevDir, l.Name))
		if err == nil {
			if isFile(devPath) {
				return devPath, nil
			}
			tried = append(tried, devPath)
		}
	}

	if l.ResourceDir != "" {
		resPath := filepath.Join(l.ResourceDir, "binaries", l.Name)
		if resolved, err := filepath.EvalSymlinks(resPath); err == nil && isFile(resolved) {
			return filepath.Abs(resolved)
		}
		tried = append(tried, resPath)
	}

	return "", fmt.Errorf("%w: %s is not in %v; place the ffmpeg binary in the binaries directory", ErrToolNotFound, l.Name, tried)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
