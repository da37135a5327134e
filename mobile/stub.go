//go:build !mobile

// 桌面构建时 mobile 包只有这个占位函数，绑定代码见 mobile.go
package mobile

// Dummy 确保包被 ebitenmobile 识别
func Dummy() {}
