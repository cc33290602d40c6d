package metadata

import "fmt"

// CheckSingleListItem returns the single element of data, erroring when
// the list does not hold exactly one item.
func CheckSingleListItem(data []any) (any, error) {
	if len(data) != 1 {
		return nil, fmt.Errorf("single list check failed. %d items found: %v", len(data), data)
	}
	return data[0], nil
}

// GetProperty returns prop[key]. When the value is a list the first
// element is returned, matching the API's habit of wrapping single
// values in lists.
func GetProperty(key string, prop map[string]any) any {
	if prop == nil {
		return nil
	}

	value := prop[key]
	if list, ok := value.([]any); ok {
		if len(list) == 0 {
			return nil
		}
		return list[0]
	}
	return value
}
