package shared

// ServiceResult is the outcome of a write operation. Failure here means the
// operation ran but did not take effect; infrastructure problems travel as
// errors, never through this type.
type ServiceResult struct {
	ID           int64  `json:"id"`
	IsSuccessful bool   `json:"is_successful"`
	Message      string `json:"message"`
}

// SetSuccess marks the result successful with the given message
func (r *ServiceResult) SetSuccess(message string) {
	r.IsSuccessful = true
	r.Message = message
}

// SetFailure marks the result failed with the given message
func (r *ServiceResult) SetFailure(message string) {
	r.IsSuccessful = false
	r.Message = message
}

// AddResult builds an insert outcome from a success flag
func AddResult(ok bool) ServiceResult {
	var result ServiceResult
	if ok {
		result.SetSuccess("Record added successfully.")
	} else {
		result.SetFailure("Error while inserting record.")
	}
	return result
}

// UpdateResult builds an update outcome from a success flag
func UpdateResult(ok bool) ServiceResult {
	var result ServiceResult
	if ok {
		result.SetSuccess("Record updated successfully.")
	} else {
		result.SetFailure("Error while updating record.")
	}
	return result
}

// RemoveResult builds a delete outcome from a success flag
func RemoveResult(ok bool) ServiceResult {
	var result ServiceResult
	if ok {
		result.SetSuccess("Record deleted successfully.")
	} else {
		result.SetFailure("Error while deleting record.")
	}
	return result
}
