// file: internals/features/schools/dto/school_dto.go
package dto

import (
	"strings"

	model "tryoutku_backend/internals/features/schools/model"
	tdto "tryoutku_backend/internals/features/tryouts/dto"
)

type CreateSchoolRequest struct {
	SchoolName    string  `json:"school_name" validate:"required,min=3,max=150"`
	SchoolCity    *string `json:"school_city" validate:"omitempty,max=100"`
	SchoolAddress *string `json:"school_address" validate:"omitempty"`
}

func (r *CreateSchoolRequest) ToModel() *model.SchoolModel {
	return &model.SchoolModel{
		SchoolName:     strings.TrimSpace(r.SchoolName),
		SchoolCity:     r.SchoolCity,
		SchoolAddress:  r.SchoolAddress,
		SchoolIsActive: true,
	}
}

type PatchSchoolRequest struct {
	SchoolName     tdto.UpdateField[string] `json:"school_name"`
	SchoolCity     tdto.UpdateField[string] `json:"school_city"`
	SchoolAddress  tdto.UpdateField[string] `json:"school_address"`
	SchoolIsActive tdto.UpdateField[bool]   `json:"school_is_active"`
}

func (r *PatchSchoolRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	tdto.ApplyUpdate(updates, "school_name", r.SchoolName)
	tdto.ApplyUpdate(updates, "school_city", r.SchoolCity)
	tdto.ApplyUpdate(updates, "school_address", r.SchoolAddress)
	tdto.ApplyUpdate(updates, "school_is_active", r.SchoolIsActive)
	return updates
}
