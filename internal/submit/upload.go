package submit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/five82/akshrail/internal/fixtures"
	"github.com/five82/akshrail/internal/render"
)

// AllowedExtensions lists the file types the upload picker offers.
var AllowedExtensions = []string{".pdf", ".docx", ".jpg", ".png", ".txt", ".xlsx"}

// File is an opaque reference to the chosen file. Only its name and size are
// ever read.
type File struct {
	Name string
	Size int64
	Path string
}

// HumanSize formats the size for display, e.g. "1.2 MB".
func (f File) HumanSize() string {
	return humanize.Bytes(uint64(max(f.Size, 0)))
}

// StatFile builds a File from a path on disk without reading its contents.
func StatFile(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat upload: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("stat upload: %s is a directory", path)
	}
	return &File{Name: filepath.Base(path), Size: info.Size(), Path: path}, nil
}

// AllowedFile reports whether name has one of AllowedExtensions.
func AllowedFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Upload is one upload submission.
type Upload struct {
	File  *File
	Title string
	Type  fixtures.DocumentType
}

// DisplayTitle is the title if given, otherwise the file name.
func (u Upload) DisplayTitle() string {
	if t := strings.TrimSpace(u.Title); t != "" {
		return t
	}
	if u.File != nil {
		return u.File.Name
	}
	return ""
}

// Receipt acknowledges an accepted upload.
type Receipt struct {
	ID       string                `json:"id"`
	Title    string                `json:"title"`
	Type     fixtures.DocumentType `json:"type"`
	FileName string                `json:"file_name"`
	Size     string                `json:"size"`
}

// UploadResult is what an upload leaves on screen once processing ends.
type UploadResult struct {
	Outcomes []Outcome
	Receipt  Receipt
}

// BeginUpload validates u. Without a file it returns the single error outcome
// and ErrNoFile; otherwise the acknowledgement shown before processing.
func (f *Flows) BeginUpload(u Upload) ([]Outcome, error) {
	if u.File == nil {
		return []Outcome{{Tone: render.ToneError, Message: msgNoFile}}, ErrNoFile
	}
	return []Outcome{
		{Tone: render.ToneSuccess, Message: fmt.Sprintf("✅ Document '%s' uploaded successfully!", u.File.Name)},
		{Tone: render.ToneInfo, Message: msgProcessing},
	}, nil
}

// FinishUpload waits out the processing delay and returns the final outcomes.
// It returns early with the context's error if ctx ends first.
func (f *Flows) FinishUpload(ctx context.Context, u Upload) (UploadResult, error) {
	if u.File == nil {
		return UploadResult{}, ErrNoFile
	}
	if err := wait(ctx, f.uploadDelay); err != nil {
		return UploadResult{}, err
	}

	typ := u.Type
	if typ == "" {
		typ = fixtures.TypeReport
	}
	receipt := Receipt{
		ID:       f.newID(),
		Title:    u.DisplayTitle(),
		Type:     typ,
		FileName: u.File.Name,
		Size:     u.File.HumanSize(),
	}
	f.logger.Info("upload processed",
		zap.String("receipt", receipt.ID),
		zap.String("file", receipt.FileName),
		zap.Int64("bytes", u.File.Size),
		zap.String("type", string(typ)),
	)

	return UploadResult{
		Outcomes: []Outcome{
			{Tone: render.ToneSuccess, Message: msgProcessed},
			{Message: "Title: " + receipt.Title},
			{Message: "Type: " + string(receipt.Type)},
			{Tone: render.ToneInfo, Message: msgSummaryLater},
		},
		Receipt: receipt,
	}, nil
}

// SubmitUpload runs BeginUpload and FinishUpload in sequence and returns
// every outcome in display order.
func (f *Flows) SubmitUpload(ctx context.Context, u Upload) ([]Outcome, error) {
	begun, err := f.BeginUpload(u)
	if err != nil {
		return begun, err
	}
	result, err := f.FinishUpload(ctx, u)
	if err != nil {
		return begun, err
	}
	return append(begun, result.Outcomes...), nil
}

func newReceiptID() string {
	return uuid.NewString()
}
