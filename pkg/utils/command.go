package utils

import (
	"strings"
	"unicode"
)

// NormalizeCommand 规范化菜单中输入的秘密指令：去掉所有空白并转为小写
func NormalizeCommand(input string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, input)
}
