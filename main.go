package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/inchinet/Liquid-glass-clock/config"
	"github.com/inchinet/Liquid-glass-clock/internal/entity"
	"github.com/inchinet/Liquid-glass-clock/internal/game"
	"github.com/inchinet/Liquid-glass-clock/internal/icon"
	"github.com/inchinet/Liquid-glass-clock/internal/logging"
	"github.com/inchinet/Liquid-glass-clock/internal/lunar"
	"github.com/inchinet/Liquid-glass-clock/internal/monitor"
	"github.com/inchinet/Liquid-glass-clock/internal/widget"
)

const (
	title = "Liquid Clock"
	// 没配置 [Platform] AppID 时窗口管理器看到的名字
	defaultAppID = "inchinet.liquidclock"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 1. 路径和配置
	paths, err := config.ResolvePaths()
	if err != nil {
		slog.Error("resolve paths failed", "error", err)
		return 1
	}
	cfg, cfgErr := config.Load(paths.ConfigFile())

	logger, closer, logErr := logging.New(logging.Options{
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
		Dir:   paths.ConfigDir,
	}, os.Stderr)
	defer closer.Close()
	if logErr != nil {
		logger.Warn("log file unavailable, using stderr", "error", logErr)
	}
	if cfgErr != nil {
		// 读不了就用默认配置继续跑
		logger.Warn("load config failed, using defaults", "error", cfgErr)
	}
	logger.Debug("paths resolved", "config", paths.ConfigDir, "resources", paths.ResourceDir)

	// 2. 基础窗口设置
	ebiten.SetWindowDecorated(false) // 无边框
	ebiten.SetWindowFloating(true)   // 始终置顶
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(entity.WidgetSize, entity.WidgetSize)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true) // 关窗口前要先保存位置
	ebiten.SetTPS(game.IdleTPS)

	imgs, err := icon.Load(paths.ResourceDir)
	switch {
	case errors.Is(err, icon.ErrNotFound):
		logger.Debug("no window icon", "dir", paths.ResourceDir)
	case err != nil:
		logger.Debug("window icon skipped", "error", err)
	default:
		ebiten.SetWindowIcon(imgs)
	}

	// 3. 摆放窗口
	displays := monitor.Query(monitor.System(game.Displays), logger)
	win := widget.NewGlobalWindow(game.Screen{}, displays)
	w := widget.New(win, cfg, paths.ConfigFile(), logger)
	pos := w.Place(displays)
	logger.Info("widget placed", "x", pos.X, "y", pos.Y, "displays", len(displays))

	// 4. 启动
	appID := cfg.AppID
	if appID == "" {
		appID = defaultAppID
	}
	mgr := game.New(w, lunar.Calendar{})
	err = ebiten.RunGameWithOptions(mgr, &ebiten.RunGameOptions{
		ScreenTransparent: true, // 透明背景
		SkipTaskbar:       false,
		X11ClassName:      appID,
		X11InstanceName:   appID,
	})
	if err != nil {
		logger.Error("run game failed", "error", err)
		return 1
	}
	return 0
}
