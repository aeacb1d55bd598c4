package misc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

func ReadFile(fileName string) ([]byte, error) {
	if fileName == "" {
		return nil, errors.New("no filename supplied")
	}
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s - %w", fileName, err)
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s - %w", fileName, err)
	}
	return fileBytes, nil
}

// CreateFile creates (or truncates) fileName, making any missing parent directories first
func CreateFile(fileName string) (*os.File, error) {
	if fileName == "" {
		return nil, errors.New("no filename supplied")
	}
	if dir := filepath.Dir(fileName); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("unable to create folder %s - %w", dir, err)
		}
	}
	file, err := os.Create(fileName)
	if err != nil {
		return nil, fmt.Errorf("unable to create file %s - %w", fileName, err)
	}
	return file, nil
}

func WriteFile(fileName string, contents []byte) (int, error) {
	file, err := CreateFile(fileName)
	if err != nil {
		return 0, err
	}
	bytesWritten, err := file.Write(contents)
	if err != nil {
		file.Close()
		return bytesWritten, fmt.Errorf("unable to write file %s - %w", fileName, err)
	}
	if err = file.Close(); err != nil {
		return bytesWritten, fmt.Errorf("unable to close file %s - %w", fileName, err)
	}
	return bytesWritten, nil
}
