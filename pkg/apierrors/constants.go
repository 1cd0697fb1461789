package apierrors

const (
	MsgFailListTasks       = "errorListTasks"
	MsgFailListProjects    = "errorListProjects"
	MsgInvalidID           = "invalidID"
	MsgInvalidPayload      = "invalidPayload"
	MsgTaskNotFound        = "taskNotFound"
	MsgProjectNotFound     = "projectNotFound"
	MsgDuplicateIdentifier = "duplicateIdentifier"
	MsgMissingArgument     = "missingArgument"
	MsgFailCreateTask      = "failCreateTask"
	MsgFailUpdateTask      = "failUpdateTask"
	MsgFailCreateProject   = "failCreateProject"
	MsgStorageFailure      = "storageFailure"
	MsgEditNotAllowed      = "editNotAllowed"
)
