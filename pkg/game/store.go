package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// yamlStore 把一个 YAML 文档存放在 gdata 的 object/property 下
// manager 为 nil 时读写都是空操作（降级模式）
type yamlStore struct {
	manager  *gdata.Manager
	object   string
	property string
}

// available 是否有可用的存储
func (s yamlStore) available() bool {
	return s.manager != nil
}

// load 读取并解码到 v，存档不存在时返回 found=false
func (s yamlStore) load(v any) (found bool, err error) {
	if s.manager == nil || !s.manager.ObjectPropExists(s.object, s.property) {
		return false, nil
	}

	raw, err := s.manager.LoadObjectProp(s.object, s.property)
	if err != nil {
		return true, fmt.Errorf("failed to load %s/%s: %w", s.object, s.property, err)
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("failed to unmarshal %s/%s: %w", s.object, s.property, err)
	}
	return true, nil
}

// save 编码 v 并写入存储
func (s yamlStore) save(v any) error {
	if s.manager == nil {
		return nil
	}

	raw, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", s.object, s.property, err)
	}
	if err := s.manager.SaveObjectProp(s.object, s.property, raw); err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", s.object, s.property, err)
	}
	return nil
}
