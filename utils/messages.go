package utils

// Messages rendered to the user. Pages never show the underlying cause
// unless the backend supplied one and the page allows surfacing it.
const (
	ALL_FIELDS_REQUIRED      = "All fields are required."
	REQUEST_IN_PROGRESS      = "A request is already in progress."
	LOGIN_FAILED             = "Login failed - please check your email and password."
	REGISTRATION_FAILED      = "Registration failed. Please check your inputs."
	SUBMISSION_FAILED        = "Submission failed. Please try again."
	FAILED_TO_LOAD_PROVIDERS = "Failed to load providers."
	BOOKING_FAILED           = "Booking failed. Please try again."
	FAILED_TO_LOAD_SERVICES  = "Failed to load services."
	FAILED_TO_SAVE_SERVICE   = "Failed to save service."
	FAILED_TO_DELETE_SERVICE = "Failed to delete service."
	SERVICE_CREATED          = "Service created successfully."
	SERVICE_UPDATED          = "Service updated successfully."
	SERVICE_DELETED          = "Service deleted successfully."
	FAILED_TO_LOAD_LIST      = "Failed to load records."
	FAILED_TO_DELETE         = "Delete failed. Please try again."

	PATIENT_REGISTRATION_FAILED = "Registration failed."
	PATIENT_REGISTERED          = "Registered successfully! Please login."
	PATIENT_LOGIN_FAILED        = "Login failed."
	PATIENT_LOGIN_SUCCESS       = "Login successful!"
	PATIENT_FETCH_FAILED        = "Failed to fetch patient data."
	PROFILE_UPDATE_FAILED       = "Profile update failed."
	PROFILE_UPDATED             = "Profile updated!"
	RECORDS_UPDATE_FAILED       = "Failed to update health records."
	RECORDS_UPDATED             = "Health records updated!"
	PATIENT_RELOGIN_REQUIRED    = "Please login again to load your profile."
	APPOINTMENT_BOOKED          = "Appointment booked successfully!"
)

// Error texts for sentinel errors.
const (
	TOKEN_NOT_IN_RESPONSE = "no token in login response"
	ID_NOT_IN_RESPONSE    = "no id in response"
	VALIDATION_FAILED     = "required field missing"
	SESSION_NOT_FOUND     = "session not found"
	SESSION_COOKIE_BAD    = "session cookie could not be opened"
	UNKNOWN_SESSION_STORE = "unknown session store"
	BACKEND_UNREACHABLE   = "backend unreachable"
)
