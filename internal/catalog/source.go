package catalog

import (
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"sync"

	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
	applog "github.com/darkkaiser/lensyz-store/pkg/log"
)

const component = "catalog"

//go:embed sample/products.json
var sampleDocument []byte

// Source 카탈로그를 불러오는 공급원입니다.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// EmbeddedSource 바이너리에 포함된 샘플 카탈로그(15개 상품)를 제공합니다.
type EmbeddedSource struct{}

func (EmbeddedSource) Load(_ context.Context) (*Catalog, error) {
	doc, err := ParseJSON(sampleDocument)
	if err != nil {
		return nil, err
	}
	return New(doc)
}

var (
	sampleOnce    sync.Once
	sampleCatalog *Catalog
)

// Sample 내장 샘플 카탈로그를 반환합니다. 내장 문서가 손상된 경우 패닉이 발생합니다.
func Sample() *Catalog {
	sampleOnce.Do(func() {
		c, err := EmbeddedSource{}.Load(context.Background())
		if err != nil {
			panic("내장 샘플 카탈로그를 불러올 수 없습니다: " + err.Error())
		}
		sampleCatalog = c
	})
	return sampleCatalog
}

// FileSource JSON 또는 YAML 파일에서 카탈로그를 불러옵니다. 형식은 확장자로 결정됩니다.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Timeout, "카탈로그 로드가 취소되었습니다")
	}

	var parse func([]byte) (Document, error)
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".json":
		parse = ParseJSON
	case ".yaml", ".yml":
		parse = ParseYAML
	default:
		return nil, ErrUnsupportedFormat
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrapf(err, apperrors.NotFound, "카탈로그 파일이 존재하지 않습니다 (path=%q)", s.Path)
		}
		return nil, apperrors.Wrapf(err, apperrors.System, "카탈로그 파일을 읽을 수 없습니다 (path=%q)", s.Path)
	}

	doc, err := parse(data)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "카탈로그 파일을 해석할 수 없습니다 (path=%q)", s.Path)
	}

	c, err := New(doc)
	if err != nil {
		return nil, err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"path":     s.Path,
		"products": c.Len(),
	}).Debug("카탈로그 파일 로드 완료")

	return c, nil
}
