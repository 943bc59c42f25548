package lvlviz

// Name and Version identify the application in logs, banners and the
// health endpoint.
const (
	Name    = "lvlviz"
	Version = "0.1.0"
)
