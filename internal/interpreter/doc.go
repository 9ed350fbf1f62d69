// Package interpreter resolves the python interpreter the pipeline
// runs against, installing a portable Miniforge runtime when the host
// has none.
//
// # Resolution Chain
//
// Locator.Locate tries, in priority order:
//   - An explicit interpreter path, when one was configured. It must
//     exist, except in dry-run mode where it is accepted as-is.
//   - The generic names python3, python, and py, first as literal
//     paths, then resolved against the search path.
//   - A previously installed portable runtime under the runtime
//     directory (bin/python, or python.exe on Windows).
//   - A fresh install: the platform- and architecture-specific
//     Miniforge installer is downloaded into a disposable staging
//     directory and run silently against the runtime directory.
//
// # Installation
//
// Installer invocation is non-interactive on every platform. Windows
// uses the installer's silent flags (/InstallationType=JustMe
// /AddToPath=0 /S /D=<dir>); Unix-like systems mark the script
// executable and run it through bash with -b -p <dir>. Unsupported
// CPU architectures fail before any download is attempted.
//
// In dry-run mode the download and the installer run are described
// but skipped, and the would-be interpreter path is returned so later
// stages can print their plans against it.
package interpreter
