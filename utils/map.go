package utils

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// OrderedMapToString converts an orderedmap to a string of the form "[k1=v1 k2=v2]".
func OrderedMapToString(data *orderedmap.OrderedMap[string, any]) string {
	if data == nil {
		return "[]"
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i, key := range data.Keys() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		v, _ := data.Get(key)
		sb.WriteString(fmt.Sprintf("%s=%v", key, v))
	}
	sb.WriteByte(']')
	return sb.String()
}
