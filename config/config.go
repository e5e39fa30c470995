package config

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// FileName 配置文件名，放在可执行文件旁边
const FileName = "config.ini"

const (
	sectionSettings = "Settings"
	sectionLogging  = "Logging"
	sectionPlatform = "Platform"

	keyWindowX = "WindowX"
	keyWindowY = "WindowY"
	keyActive  = "Active"
	keyLevel   = "Level"
	keyFile    = "File"
	keyAppID   = "AppID"
)

// Config 结构体：对应 config.ini 的内容
//
//	[Settings]
//	WindowX = 1670
//	WindowY = 50
//	Active  = 1
type Config struct {
	WindowX     int
	WindowY     int
	HasPosition bool // 文件里是否同时存在 WindowX 和 WindowY
	Active      int  // 只存不用，默认 1

	LogLevel string // [Logging] Level，空表示 warn
	LogFile  string // [Logging] File，空表示 stderr
	AppID    string // [Platform] AppID，任务栏/窗口管理器用的身份

	// 原始文件，保存时只改我们自己的键，其余内容原样写回
	file *ini.File
}

// NewDefault 生成一份默认配置
// 当找不到配置文件，或者读取失败时，用这个“保底”
func NewDefault() *Config {
	return &Config{
		Active: 1,
		file:   ini.Empty(),
	}
}

// Load 从硬盘读取配置
// 文件不存在不算错误；读不了或格式坏了也返回默认配置，同时把错误交给调用方记录
func Load(filename string) (*Config, error) {
	f, err := ini.LoadSources(ini.LoadOptions{Loose: true}, filename)
	if err != nil {
		return NewDefault(), fmt.Errorf("load %s: %w", filename, err)
	}
	return fromFile(f), nil
}

// Parse 从内存里的 ini 文本解析配置
func Parse(data []byte) (*Config, error) {
	f, err := ini.Load(data)
	if err != nil {
		return NewDefault(), fmt.Errorf("parse config: %w", err)
	}
	return fromFile(f), nil
}

func fromFile(f *ini.File) *Config {
	cfg := NewDefault()
	cfg.file = f

	settings := f.Section(sectionSettings)
	x, errX := intKey(settings, keyWindowX)
	y, errY := intKey(settings, keyWindowY)
	if errX == nil && errY == nil {
		cfg.WindowX, cfg.WindowY = x, y
		cfg.HasPosition = true
	}
	if active, err := intKey(settings, keyActive); err == nil {
		cfg.Active = active
	}

	cfg.LogLevel = stringKey(f, sectionLogging, keyLevel)
	cfg.LogFile = stringKey(f, sectionLogging, keyFile)
	cfg.AppID = stringKey(f, sectionPlatform, keyAppID)
	return cfg
}

var errMissingKey = errors.New("missing key")

// stringKey 读可选的字符串键，不存在时不会新建节点
func stringKey(f *ini.File, section, name string) string {
	sec, err := f.GetSection(section)
	if err != nil || !sec.HasKey(name) {
		return ""
	}
	return strings.TrimSpace(sec.Key(name).String())
}

// intKey 读整数键；旧版桌面程序写出的是小写键名 (windowx)，一并兼容
func intKey(sec *ini.Section, name string) (int, error) {
	for _, n := range []string{name, strings.ToLower(name)} {
		if sec.HasKey(n) {
			return sec.Key(n).Int()
		}
	}
	return 0, errMissingKey
}

// Position 保存过的窗口位置；没有则返回 nil
func (c *Config) Position() *image.Point {
	if !c.HasPosition {
		return nil
	}
	p := image.Pt(c.WindowX, c.WindowY)
	return &p
}

// SetPosition 更新窗口位置 (只改内存，落盘靠 Save)
func (c *Config) SetPosition(p image.Point) {
	c.WindowX, c.WindowY = p.X, p.Y
	c.HasPosition = true
}

// WriteTo 把配置写成 ini 文本
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	c.sync()
	return c.file.WriteTo(w)
}

// sync 把字段写回 ini 结构，覆盖旧值
func (c *Config) sync() {
	if c.file == nil {
		c.file = ini.Empty()
	}
	settings := c.file.Section(sectionSettings)
	for _, name := range []string{keyWindowX, keyWindowY, keyActive} {
		settings.DeleteKey(strings.ToLower(name))
	}
	if c.HasPosition {
		settings.Key(keyWindowX).SetValue(strconv.Itoa(c.WindowX))
		settings.Key(keyWindowY).SetValue(strconv.Itoa(c.WindowY))
	}
	settings.Key(keyActive).SetValue(strconv.Itoa(c.Active))
}

// Save 把当前配置整体写入硬盘 (覆盖)
func Save(cfg *Config, filename string) error {
	cfg.sync()
	if err := cfg.file.SaveTo(filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}
