//go:build linux

package monitor

// System X11 优先 (能拿到多屏布局)，Wayland 等情况退回 fallback
func System(fallback Provider) Provider {
	return Chain(X11{}, fallback)
}
