package domain

import (
	"fmt"
	"regexp"
)

const maxSlugLength = 200

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Slug はURLおよびキャッシュキーに使用されるリソース識別子です。
// 同一リソースは常に同一のスラッグへ正規化されることを前提とします。
type Slug struct {
	value string
}

func NewSlug(value string) (Slug, error) {
	if value == "" || len(value) > maxSlugLength {
		return Slug{}, ErrInvalidSlugFormat
	}
	if !slugPattern.MatchString(value) {
		return Slug{}, fmt.Errorf("%w: %q", ErrInvalidSlugFormat, value)
	}
	return Slug{value: value}, nil
}

func (s Slug) String() string {
	return s.value
}
