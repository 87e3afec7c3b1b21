package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/decker502/stonekeep/pkg/embedded"
)

// LevelsDir 关卡配置目录
const LevelsDir = "data/levels"

// LevelPath 返回关卡配置文件路径，如 "data/levels/Level_1.yaml"
func LevelPath(levelID string) string {
	return filepath.ToSlash(filepath.Join(LevelsDir, levelID+".yaml"))
}

// LoadLevel 按关卡ID加载配置
// embedded 已初始化时从嵌入资源读取，否则从工作目录读取文件
func LoadLevel(levelID string) (*LevelConfig, error) {
	path := LevelPath(levelID)

	if !embedded.IsInitialized() {
		return LoadLevelConfig(path)
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded level %s: %w", levelID, err)
	}
	return ParseLevelConfig(data, path)
}

// ListLevels 列出可用的关卡ID（按名称排序）
// 与 LoadLevel 一致：embedded 已初始化时列举嵌入资源，否则列举工作目录
func ListLevels() ([]string, error) {
	pattern := LevelsDir + "/*.yaml"

	var (
		matches []string
		err     error
	)
	if embedded.IsInitialized() {
		matches, err = embedded.Glob(pattern)
	} else {
		matches, err = filepath.Glob(filepath.FromSlash(pattern))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}

	levels := make([]string, 0, len(matches))
	for _, m := range matches {
		levels = append(levels, strings.TrimSuffix(filepath.Base(m), ".yaml"))
	}
	slices.Sort(levels)
	return levels, nil
}
