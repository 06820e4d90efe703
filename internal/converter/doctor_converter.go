package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		DoctorID:         doctor.ID,
		DoctorName:       doctor.DoctorName,
		Specialization:   doctor.Specialization,
		Phone:            doctor.Phone,
		Email:            doctor.Email,
		MedicalLicenseNo: doctor.MedicalLicenseNo,
		Experience:       doctor.Experience,
		Status:           doctor.Status,
		Address:          doctor.Address,
		DateOfBirth:      doctor.DateOfBirth,
		Gender:           doctor.Gender,
		City:             doctor.City,
		State:            doctor.State,
		PinCode:          doctor.PinCode,
		Country:          doctor.Country,
		Role:             doctor.Role,
		Image:            doctor.Image,
	}
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		responses = append(responses, *DoctorToResponse(&doctors[i]))
	}
	return responses
}
