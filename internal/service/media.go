package service

import "io"

// UploadFile описывает загружаемый файл, уже прошедший проверку
// типа и размера на уровне handler'а.
type UploadFile struct {
	FileName string
	Size     int64
	Reader   io.Reader
}
