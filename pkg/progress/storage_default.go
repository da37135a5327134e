//go:build !android

package progress

// prepareStorage 桌面平台上 gdata 会自行创建目录
func prepareStorage() error { return nil }
