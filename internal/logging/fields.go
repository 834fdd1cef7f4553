package logging

const (
	// FieldComponent is the structured logging key for component names.
	FieldComponent = "component"
	// FieldGroup is the structured logging key for command group names.
	FieldGroup = "group"
	// FieldCommand is the structured logging key for command names.
	FieldCommand = "command"
	// FieldInvocationID identifies one dispatched command invocation.
	FieldInvocationID = "invocation_id"
	// FieldParams lists the parameter names bound for an invocation.
	FieldParams = "params"
	// FieldConfigPath is the structured logging key for the loaded config file.
	FieldConfigPath = "config_path"
)
