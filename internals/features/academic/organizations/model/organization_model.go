// file: internals/features/academic/organizations/model/organization_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrganizationModel: keanggotaan organisasi milik user (UKM, himpunan, dsb).
type OrganizationModel struct {
	OrganizationID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:organization_id" json:"organization_id"`
	OrganizationUserID uuid.UUID `gorm:"type:uuid;not null;index;column:organization_user_id" json:"organization_user_id"`

	OrganizationName        string         `gorm:"type:varchar(100);not null;column:organization_name" json:"organization_name"`
	OrganizationPosition    *string        `gorm:"type:varchar(100);column:organization_position" json:"organization_position,omitempty"`
	OrganizationDescription *string        `gorm:"type:text;column:organization_description" json:"organization_description,omitempty"`
	OrganizationEmbedding   datatypes.JSON `gorm:"type:jsonb;column:organization_embedding" json:"-"`

	OrganizationCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:organization_created_at" json:"organization_created_at"`
	OrganizationUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:organization_updated_at" json:"organization_updated_at"`
}

func (OrganizationModel) TableName() string { return "organizations" }

func (m *OrganizationModel) BeforeSave(tx *gorm.DB) error {
	m.OrganizationName = strings.TrimSpace(m.OrganizationName)
	if m.OrganizationPosition != nil {
		p := strings.TrimSpace(*m.OrganizationPosition)
		if p == "" {
			m.OrganizationPosition = nil
		} else {
			m.OrganizationPosition = &p
		}
	}
	if m.OrganizationDescription != nil {
		d := strings.TrimSpace(*m.OrganizationDescription)
		if d == "" {
			m.OrganizationDescription = nil
		} else {
			m.OrganizationDescription = &d
		}
	}
	return nil
}
