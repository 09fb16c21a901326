package service

// ProjectServiceWrapper defines middleware composition for ProjectService.
// Implementations wrap an existing ProjectService to add behavior such as
// validating input.
type ProjectServiceWrapper interface {
	Wrap(ProjectService) ProjectService // returns a decorated ProjectService applying additional behavior
}
