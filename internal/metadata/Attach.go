package metadata

// Outputs describes the files written for a converted grid.
type Outputs struct {
	Timestamp int64
	// DataName keys the data file; it is the configured variable name, which
	// may differ from the variable name resolved by Merge.
	DataName string
	DataPath string
	LatPath  string
	LonPath  string
}

// Attach returns a copy of doc whose data section references the outputs.
func Attach(doc *Document, outputs Outputs) (*Document, error) {
	out := doc.Clone()

	data, err := out.Section(Data)
	if err != nil {
		return nil, err
	}

	data.Set("start_time", outputs.Timestamp)
	data.Set("valid_time", outputs.Timestamp)
	data.Set(outputs.DataName, outputs.DataPath)
	data.Set("lat", outputs.LatPath)
	data.Set("lon", outputs.LonPath)

	return out, nil
}
