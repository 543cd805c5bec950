package storage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/h2non/filetype"

	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

// sniffLen - сколько байт нужно filetype для определения типа.
const sniffLen = 262

// Разрешённые для загрузки типы: MIME -> расширение сохраняемого файла.
var allowedTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

var (
	ErrUnsupportedType = apperror.Validation("Unsupported file type. Allowed: jpeg, png, gif, webp, pdf")
	ErrEmptyFile       = apperror.Validation("File cannot be empty")
)

// StoredFile - результат сохранения загрузки.
type StoredFile struct {
	Name string
	Size int64
	MIME string
}

// FileStorage хранит загруженные файлы в локальном каталоге под случайными именами.
type FileStorage struct {
	rootPath       string
	maxUploadBytes int64
}

// NewFileStorage создаёт файловое хранилище.
func NewFileStorage(rootPath string, maxUploadMB int64) (*FileStorage, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: не удалось создать каталог %s: %w", rootPath, err)
	}

	return &FileStorage{
		rootPath:       rootPath,
		maxUploadBytes: maxUploadMB * 1024 * 1024,
	}, nil
}

func (s *FileStorage) MaxUploadBytes() int64 {
	return s.maxUploadBytes
}

// Save определяет тип по содержимому и сохраняет файл через временный файл и rename.
func (s *FileStorage) Save(ctx context.Context, r io.Reader) (*StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	br := bufio.NewReaderSize(r, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("storage: не удалось прочитать файл: %w", err)
	}
	if len(head) == 0 {
		return nil, ErrEmptyFile
	}

	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return nil, ErrUnsupportedType
	}
	ext, ok := allowedTypes[kind.MIME.Value]
	if !ok {
		return nil, ErrUnsupportedType
	}

	name := strings.ReplaceAll(uuid.NewString(), "-", "") + ext
	targetPath := filepath.Join(s.rootPath, name)

	f, err := os.CreateTemp(s.rootPath, ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("storage: не удалось создать файл: %w", err)
	}
	tempPath := f.Name()
	defer func() {
		_ = f.Close()
		_ = os.Remove(tempPath)
	}()

	limited := io.LimitedReader{R: br, N: s.maxUploadBytes + 1}
	written, err := io.Copy(f, &limited)
	if err != nil {
		return nil, fmt.Errorf("storage: ошибка записи файла: %w", err)
	}
	if written > s.maxUploadBytes {
		return nil, apperror.Validation(fmt.Sprintf("File exceeds the %d MB limit", s.maxUploadBytes/(1024*1024)))
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("storage: ошибка закрытия файла: %w", err)
	}
	if err := os.Rename(tempPath, targetPath); err != nil {
		return nil, fmt.Errorf("storage: не удалось переименовать файл: %w", err)
	}

	return &StoredFile{Name: name, Size: written, MIME: kind.MIME.Value}, nil
}

// Locate возвращает путь к сохранённому файлу и его MIME тип.
func (s *FileStorage) Locate(name string) (string, string, error) {
	safe, ok := sanitizeFilename(name)
	if !ok {
		return "", "", apperror.ErrFileNotFound
	}

	path := filepath.Join(s.rootPath, safe)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", "", apperror.ErrFileNotFound
	}

	mime := "application/octet-stream"
	if kind, err := filetype.MatchFile(path); err == nil && kind != filetype.Unknown {
		mime = kind.MIME.Value
	}
	return path, mime, nil
}

// sanitizeFilename допускает только простое имя файла без каталогов.
func sanitizeFilename(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") ||
		strings.ContainsAny(name, `/\`) {
		return "", false
	}
	return name, true
}
