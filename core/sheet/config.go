package sheet

// Config holds configuration for the workbook codec.
type Config struct {
	// Name is the sheet label used for exported roster workbooks.
	Name string `mapstructure:"name" default:"Attendance"`
}
