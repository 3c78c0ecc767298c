package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnnotationKind names a downstream processing slot attached to a
// newly stored image.
type AnnotationKind string

const (
	AnnotationNSFW     AnnotationKind = "nsfw"
	AnnotationDeepfake AnnotationKind = "deepfake"
	AnnotationFace     AnnotationKind = "face"
)

// AnnotationKinds lists the dependent rows created for every
// non-duplicate image, in creation order.
var AnnotationKinds = []AnnotationKind{AnnotationNSFW, AnnotationDeepfake, AnnotationFace}

// Annotation is a dependent row of an Image. Its lifecycle is tied to
// the owning image: created only alongside a non-duplicate record,
// removed when the last record sharing the key pair is deleted.
type Annotation struct {
	ID        uuid.UUID
	ImageID   uuid.UUID
	Kind      AnnotationKind
	Payload   []byte
	CreatedAt time.Time
}

func NewAnnotation(imageID uuid.UUID, kind AnnotationKind) *Annotation {
	return &Annotation{
		ID:        uuid.New(),
		ImageID:   imageID,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
}
