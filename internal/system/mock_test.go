package system

import (
	"context"
	"io/fs"
	"strings"
	"testing"
)

func TestMockFS_AddFileRead(t *testing.T) {
	mockFS := NewMockFS()

	content := []byte("requests\nnumpy\n")
	mockFS.AddFile("/work/manifest.txt", content, 0644)

	data, err := mockFS.ReadFile("/work/manifest.txt")
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}

	if string(data) != string(content) {
		t.Errorf("ReadFile = %q, want %q", string(data), string(content))
	}
}

func TestMockFS_ReadFile_NotExists(t *testing.T) {
	mockFS := NewMockFS()

	_, err := mockFS.ReadFile("/nonexistent")
	if err != fs.ErrNotExist {
		t.Errorf("ReadFile error = %v, want fs.ErrNotExist", err)
	}
}

func TestMockFS_Stat(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/test/file.txt", []byte("content"), 0644)
	mockFS.AddDir("/test/dir")

	// Stat file
	info, err := mockFS.Stat("/test/file.txt")
	if err != nil {
		t.Fatalf("Stat file error: %v", err)
	}
	if info.IsDir() {
		t.Error("File should not be a directory")
	}
	if info.Name() != "file.txt" {
		t.Errorf("Name = %q, want %q", info.Name(), "file.txt")
	}

	// Stat directory
	info, err = mockFS.Stat("/test/dir")
	if err != nil {
		t.Fatalf("Stat dir error: %v", err)
	}
	if !info.IsDir() {
		t.Error("Dir should be a directory")
	}
}

func TestMockFS_Exists(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/file.txt", []byte("x"), 0644)
	mockFS.AddDir("/dir")

	if !mockFS.Exists("/file.txt") {
		t.Error("File should exist")
	}
	if !mockFS.Exists("/dir") {
		t.Error("Dir should exist")
	}
	if mockFS.Exists("/nonexistent") {
		t.Error("Nonexistent should not exist")
	}
}

func TestMockFS_IsDir(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/file.txt", []byte("x"), 0644)
	mockFS.AddDir("/dir")

	if mockFS.IsDir("/file.txt") {
		t.Error("File should not be a directory")
	}
	if !mockFS.IsDir("/dir") {
		t.Error("Dir should be a directory")
	}
}

func TestMockFS_AddDir_Parents(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddDir("/work/.venv/bin")

	if !mockFS.IsDir("/work/.venv") {
		t.Error("Parent directory should exist")
	}
	if !mockFS.IsDir("/work") {
		t.Error("Grandparent directory should exist")
	}
}

func TestMockFS_RemoveAll(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/dir/file1.txt", []byte("x"), 0644)
	mockFS.AddFile("/dir/file2.txt", []byte("y"), 0644)
	mockFS.AddDir("/dir/subdir")

	if err := mockFS.RemoveAll("/dir"); err != nil {
		t.Fatalf("RemoveAll error: %v", err)
	}

	if mockFS.Exists("/dir/file1.txt") {
		t.Error("File1 should be removed")
	}
	if mockFS.Exists("/dir/file2.txt") {
		t.Error("File2 should be removed")
	}
}

func TestMockFS_MkdirAll(t *testing.T) {
	mockFS := NewMockFS()

	if err := mockFS.MkdirAll("/a/b/c", 0755); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}

	if !mockFS.IsDir("/a") {
		t.Error("/a should be a directory")
	}
	if !mockFS.IsDir("/a/b") {
		t.Error("/a/b should be a directory")
	}
	if !mockFS.IsDir("/a/b/c") {
		t.Error("/a/b/c should be a directory")
	}
}

func TestMockFS_MkdirTemp(t *testing.T) {
	mockFS := NewMockFS()

	first, err := mockFS.MkdirTemp("/tmp", "installer-*")
	if err != nil {
		t.Fatalf("MkdirTemp error: %v", err)
	}
	if !strings.HasPrefix(first, "/tmp/installer-") {
		t.Errorf("MkdirTemp = %q, want /tmp/installer- prefix", first)
	}
	if !mockFS.IsDir(first) {
		t.Error("Temp directory should exist after MkdirTemp")
	}

	second, err := mockFS.MkdirTemp("/tmp", "installer-*")
	if err != nil {
		t.Fatalf("MkdirTemp error: %v", err)
	}
	if first == second {
		t.Errorf("MkdirTemp should return unique paths, got %q twice", first)
	}
}

func TestMockFS_ErrorInjection(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.ReadFileErr = fs.ErrPermission

	_, err := mockFS.ReadFile("/anything")
	if err != fs.ErrPermission {
		t.Errorf("ReadFile error = %v, want ErrPermission", err)
	}
}

func TestMockExecutor_Execute(t *testing.T) {
	exec := NewMockExecutor()
	exec.AddResponse("python3", []byte("Python 3.10.5\n"), nil)

	output, err := exec.Execute(context.Background(), "python3", "--version")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if string(output) != "Python 3.10.5\n" {
		t.Errorf("Output = %q, want %q", string(output), "Python 3.10.5\n")
	}

	// Verify command was recorded
	cmd, ok := exec.LastCommand()
	if !ok {
		t.Fatal("No command recorded")
	}
	if cmd.Name != "python3" {
		t.Errorf("Command name = %q, want %q", cmd.Name, "python3")
	}
}

func TestMockExecutor_PrefixMatching(t *testing.T) {
	exec := NewMockExecutor()
	exec.AddResponse("python -m venv", nil, nil)
	exec.AddResponse("python -m pip", nil, &MockExitError{Code: 1})

	if err := exec.ExecuteStreaming(context.Background(), "python", "-m", "venv", "/work/.venv"); err != nil {
		t.Errorf("venv command error = %v, want nil", err)
	}

	err := exec.ExecuteStreaming(context.Background(), "python", "-m", "pip", "install", "requests")
	if err == nil {
		t.Fatal("pip command should fail")
	}
	if got := ExitCode(err); got != 1 {
		t.Errorf("ExitCode = %d, want 1", got)
	}
}

func TestMockExecutor_Effect(t *testing.T) {
	exec := NewMockExecutor()
	created := false
	exec.AddEffect("python -m venv", func() { created = true })

	if err := exec.ExecuteStreaming(context.Background(), "python", "-m", "venv", "/work/.venv"); err != nil {
		t.Fatalf("ExecuteStreaming error: %v", err)
	}
	if !created {
		t.Error("effect should run when the command executes")
	}

	// Merges with a previously registered response
	exec.Reset()
	exec.AddResponse("make", []byte("built"), nil)
	ran := false
	exec.AddEffect("make", func() { ran = true })

	out, err := exec.Execute(context.Background(), "make", "all")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if string(out) != "built" {
		t.Errorf("Output = %q, want %q", string(out), "built")
	}
	if !ran {
		t.Error("effect should merge with the existing response")
	}
}

func TestMockExecutor_DefaultResponse(t *testing.T) {
	exec := NewMockExecutor()
	exec.DefaultResponse = MockResponse{Output: []byte("default"), Err: nil}

	output, err := exec.Execute(context.Background(), "unknown", "command")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if string(output) != "default" {
		t.Errorf("Output = %q, want %q", string(output), "default")
	}
}

func TestMockExecutor_LookPath(t *testing.T) {
	exec := NewMockExecutor()
	exec.AddPath("python3", "/usr/bin/python3")

	path, err := exec.LookPath("python3")
	if err != nil {
		t.Fatalf("LookPath error: %v", err)
	}
	if path != "/usr/bin/python3" {
		t.Errorf("LookPath = %q, want %q", path, "/usr/bin/python3")
	}

	if _, err := exec.LookPath("py"); err == nil {
		t.Error("LookPath should fail for unregistered executable")
	}

	if len(exec.Lookups) != 2 || exec.Lookups[0] != "python3" || exec.Lookups[1] != "py" {
		t.Errorf("Lookups = %v, want [python3 py]", exec.Lookups)
	}
}

func TestMockExecutor_Reset(t *testing.T) {
	exec := NewMockExecutor()
	exec.Execute(context.Background(), "cmd1")
	exec.Execute(context.Background(), "cmd2")
	exec.LookPath("python3")

	if len(exec.Commands) != 2 {
		t.Errorf("Commands length = %d, want 2", len(exec.Commands))
	}

	exec.Reset()

	if len(exec.Commands) != 0 {
		t.Errorf("Commands length after reset = %d, want 0", len(exec.Commands))
	}
	if len(exec.Lookups) != 0 {
		t.Errorf("Lookups length after reset = %d, want 0", len(exec.Lookups))
	}
}

func TestMockExitError(t *testing.T) {
	err := &MockExitError{Code: 42}

	if err.Error() != "exit status 42" {
		t.Errorf("Error() = %q, want %q", err.Error(), "exit status 42")
	}
	if ExitCode(err) != 42 {
		t.Errorf("ExitCode = %d, want 42", ExitCode(err))
	}
}

func TestExitCode_NoCode(t *testing.T) {
	if got := ExitCode(fs.ErrNotExist); got != -1 {
		t.Errorf("ExitCode = %d, want -1 for plain error", got)
	}
}
