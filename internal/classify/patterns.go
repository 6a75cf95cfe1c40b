package classify

// Patterns holds the matchable header text fragments per label. Matching is
// case-insensitive substring containment, so entries work for both bare and
// composite headers ("合计" matches "本年合计").
type Patterns struct {
	Note     []string
	Ratio    []string
	Subtotal []string
	Period   []string
}

// DefaultPatterns returns the built-in bilingual (Chinese/English) pattern
// sets. Callers with other locales supply their own.
func DefaultPatterns() Patterns {
	return Patterns{
		Note: []string{
			"备注", "说明", "附注", "注释", "附件",
			"note", "remark", "comment", "memo",
		},
		Ratio: []string{
			"占比", "比例", "百分比", "率", "同比", "环比",
			"ratio", "percentage", "rate", "%",
		},
		Subtotal: []string{
			"合计", "总计", "小计", "汇总", "总额", "累计",
			"total", "subtotal", "sum",
		},
		Period: []string{
			"月", "季度", "年", "上半年", "下半年",
			"jan", "feb", "mar", "apr", "may", "jun",
			"jul", "aug", "sep", "oct", "nov", "dec",
			"q1", "q2", "q3", "q4", "quarter",
		},
	}
}

// merged returns a copy with empty sets replaced by the defaults, so a config
// file may override one set without restating the rest.
func (p Patterns) merged() Patterns {
	def := DefaultPatterns()
	if len(p.Note) == 0 {
		p.Note = def.Note
	}
	if len(p.Ratio) == 0 {
		p.Ratio = def.Ratio
	}
	if len(p.Subtotal) == 0 {
		p.Subtotal = def.Subtotal
	}
	if len(p.Period) == 0 {
		p.Period = def.Period
	}
	return p
}
