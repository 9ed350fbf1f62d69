package platform

import "path/filepath"

// RuntimePython returns the interpreter path inside a portable runtime
// directory: python.exe at the root on Windows, bin/python elsewhere.
func (p Platform) RuntimePython(runtimeDir string) string {
	if p == PlatformWindows {
		return filepath.Join(runtimeDir, "python.exe")
	}
	return filepath.Join(runtimeDir, "bin", "python")
}

// VenvPython returns the interpreter path inside a virtual environment:
// Scripts\python.exe on Windows, bin/python elsewhere.
func (p Platform) VenvPython(envDir string) string {
	if p == PlatformWindows {
		return filepath.Join(envDir, "Scripts", "python.exe")
	}
	return filepath.Join(envDir, "bin", "python")
}

// ActivationHint returns the shell snippet that activates the
// environment. Windows paths keep backslashes so the hint is
// copy-pastable in cmd.exe.
func (p Platform) ActivationHint(envDir string) string {
	if p == PlatformWindows {
		return envDir + `\Scripts\activate`
	}
	return "source " + envDir + "/bin/activate"
}
