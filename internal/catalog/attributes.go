package catalog

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

//go:embed s57attributes.csv
// S-57 attribute catalogue derived from IHO S-57 Appendix A Chapter 2.
var s57AttributesCSV string

var (
	attributeNames     map[int]string
	attributeNamesOnce sync.Once
)

func loadAttributeNames() {
	attributeNames = make(map[int]string)

	reader := csv.NewReader(strings.NewReader(s57AttributesCSV))
	records, err := reader.ReadAll()
	if err != nil {
		return
	}

	for _, record := range records[1:] {
		if len(record) < 3 {
			continue
		}
		code, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			continue
		}
		acronym := strings.TrimSpace(record[2])
		if acronym != "" && acronym != "None" {
			attributeNames[code] = acronym
		}
	}
}

// AttributeName converts an S-57 numeric attribute code (ATTF.ATTL) to its
// Appendix A acronym. An unknown code synthesizes "ATTR_<code>" rather than
// failing the record: per the error taxonomy this is informational, not
// recoverable or fatal.
func AttributeName(code int) (name string, known bool) {
	attributeNamesOnce.Do(loadAttributeNames)

	if name, ok := attributeNames[code]; ok {
		return name, true
	}
	return fmt.Sprintf("ATTR_%d", code), false
}
