package converter

import (
	"advocate-directory/internal/delivery/dto"
	"advocate-directory/internal/domain/entity"
)

// AdvocatesToResponses converts a slice of Advocate entities. The result is
// never nil so an empty page encodes as [].
func AdvocatesToResponses(advocates []entity.Advocate) []dto.AdvocateResponse {
	responses := make([]dto.AdvocateResponse, len(advocates))
	for i := range advocates {
		responses[i] = advocateResponse(&advocates[i])
	}
	return responses
}

func advocateResponse(advocate *entity.Advocate) dto.AdvocateResponse {
	specialties := make([]string, len(advocate.Specialties))
	copy(specialties, advocate.Specialties)

	return dto.AdvocateResponse{
		ID:                advocate.ID,
		FirstName:         advocate.FirstName,
		LastName:          advocate.LastName,
		City:              advocate.City,
		Degree:            advocate.Degree,
		Specialties:       specialties,
		YearsOfExperience: advocate.YearsOfExperience,
		PhoneNumber:       advocate.PhoneNumber,
		CreatedAt:         advocate.CreatedAt,
	}
}
