package usecase

import (
	"fmt"
	"strings"
	"time"

	"resource_management/internal/domain/entities"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

const (
	accountIDPrefix     = "ACC"
	demandIDPrefix      = "DEM"
	demandCloneIDPrefix = "DEM-CLONE"

	idTimestampLayout = "20060102150405"
)

// newEntityID keeps the PREFIX-<timestamp> shape and appends a random
// suffix so ids minted within the same second never collide.
func newEntityID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format(idTimestampLayout), randomSuffix())
}

func newCloneID(now time.Time, index int) string {
	return fmt.Sprintf("%s-%s-%d-%s", demandCloneIDPrefix, now.Format(idTimestampLayout), index, randomSuffix())
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// parseOptionalDate turns a YYYY-MM-DD string into a date. nil and "" mean
// no date.
func parseOptionalDate(field string, raw *string) (*civil.Date, error) {
	if raw == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*raw)
	if v == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidDate, field, v)
	}
	return &d, nil
}

// patchDate applies a sparse date update onto dst. A present null or ""
// clears the date.
func patchDate(dst **civil.Date, field string, raw entities.Optional[string]) error {
	if !raw.Set {
		return nil
	}
	d, err := parseOptionalDate(field, raw.Value)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

func patchString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func patchOptionalString(dst **string, v entities.Optional[string]) {
	if !v.Set {
		return
	}
	if v.Value == nil {
		*dst = nil
		return
	}
	s := *v.Value
	*dst = &s
}

func patchInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func normalizeActor(actor string) (string, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return "", ErrMissingActor
	}
	return actor, nil
}

func normalizeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidID
	}
	return id, nil
}
