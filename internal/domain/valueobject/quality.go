package valueobject

import "github.com/pixvault/pixvault-backend/internal/domain"

// Quality selects one of the two derived variants of an image.
type Quality string

const (
	QualityLow  Quality = "low"
	QualityHigh Quality = "high"
)

func ParseQuality(s string) (Quality, error) {
	switch Quality(s) {
	case QualityLow:
		return QualityLow, nil
	case QualityHigh:
		return QualityHigh, nil
	}
	return "", domain.ErrInvalidQuality
}

func (q Quality) String() string {
	return string(q)
}

// SortOrder is the created_at ordering for listings.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	case "":
		return SortDesc, nil
	}
	return "", domain.ErrInvalidSortOrder
}
