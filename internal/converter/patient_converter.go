package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		PatientID:          patient.ID,
		Name:               patient.Name,
		Gender:             patient.Gender,
		Disease:            patient.Disease,
		Aadhar:             patient.Aadhar,
		Phone:              patient.Phone,
		DateOfBirth:        patient.DateOfBirth,
		Address:            patient.Address,
		DoctorID:           patient.DoctorID,
		AppointmentDate:    patient.AppointmentDate,
		AppointmentTime:    patient.AppointmentTime,
		MedisionStatus:     patient.MedisionStatus,
		DoctorStatus:       patient.DoctorStatus,
		LabStatus:          patient.LabStatus,
		DosageInstructions: patient.DosageInstructions,
		Notes:              patient.Notes,
		SelectedMedicines:  patient.SelectedMedicines,
		SelectedTests:      patient.SelectedTests,
		Medication:         patient.Medication,
		DateIssued:         patient.DateIssued,
		GeneratedAt:        patient.GeneratedAt,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}

// FullDetailsRowToResponse flattens the outer-join row into the three-part
// structure. Absent booking or ward joins become empty substructures, not
// errors.
func FullDetailsRowToResponse(row *entity.PatientFullDetailsRow) *dto.PatientFullDetailsResponse {
	if row == nil {
		return nil
	}

	resp := &dto.PatientFullDetailsResponse{
		Patient: dto.PatientSummary{
			PatientID:      row.PatientID,
			Name:           row.Name,
			Gender:         row.Gender,
			Disease:        row.Disease,
			Phone:          row.Phone,
			Address:        row.Address,
			DoctorStatus:   row.DoctorStatus,
			MedisionStatus: row.MedisionStatus,
			LabStatus:      row.LabStatus,
		},
	}

	if row.BookingID != nil {
		resp.BedBooking = dto.BedBookingInfo{
			BookingID:     *row.BookingID,
			BedID:         derefInt64(row.BedID),
			AdmissionDate: derefString(row.AdmissionDate),
			DischargeDate: derefString(row.DischargeDate),
			Status:        derefString(row.BedStatus),
		}
	}

	if row.WardID != nil {
		resp.Ward = dto.WardInfo{
			WardID:    *row.WardID,
			WardName:  derefString(row.WardName),
			WardType:  derefString(row.WardType),
			TotalBeds: derefInt(row.TotalBeds),
			CreatedOn: derefString(row.CreatedOn),
		}
	}

	return resp
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
