package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Paths 启动时解析一次，之后只读
type Paths struct {
	ConfigDir   string // config.ini 所在目录
	ResourceDir string // 图标等资源所在目录
}

// ConfigFile config.ini 的完整路径
func (p Paths) ConfigFile() string {
	return filepath.Join(p.ConfigDir, FileName)
}

// ResolvePaths 区分两种运行方式：
//   - 打包运行：配置放在可执行文件旁边，资源在旁边的 assets/ 目录
//   - go run：可执行文件在临时的 go-build 目录里，改用当前工作目录
func ResolvePaths() (Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return Paths{}, fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	wd, err := os.Getwd()
	if err != nil {
		return Paths{}, fmt.Errorf("working directory: %w", err)
	}
	return resolvePaths(exe, wd, os.TempDir()), nil
}

func resolvePaths(exe, wd, tmp string) Paths {
	base := filepath.Dir(exe)
	if isGoRunBinary(exe, tmp) {
		base = wd
	}
	return Paths{
		ConfigDir:   base,
		ResourceDir: filepath.Join(base, "assets"),
	}
}

// isGoRunBinary go run 生成的二进制位于 $TMPDIR/go-build*/.../exe/
func isGoRunBinary(exe, tmp string) bool {
	rel, err := filepath.Rel(tmp, exe)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	first := strings.Split(filepath.ToSlash(rel), "/")[0]
	return strings.HasPrefix(first, "go-build")
}
