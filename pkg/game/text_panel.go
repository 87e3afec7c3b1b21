package game

// TextPanel 纯内存的文本面板（说话人 + 正文）
// 实现 interaction.TextDisplay，由渲染系统或终端界面读取后绘制
type TextPanel struct {
	speaker string
	message string
}

// NewTextPanel 创建空面板
func NewTextPanel() *TextPanel {
	return &TextPanel{}
}

// SetSpeaker 设置说话人
func (p *TextPanel) SetSpeaker(text string) {
	p.speaker = text
}

// SetMessage 设置正文
func (p *TextPanel) SetMessage(text string) {
	p.message = text
}

// Speaker 当前说话人
func (p *TextPanel) Speaker() string {
	return p.speaker
}

// Message 当前正文
func (p *TextPanel) Message() string {
	return p.message
}
