package lang

import "fmt"

var messages = map[string]string{
	"menu_title":         "%s Menu",
	"menu_item":          "%d. %s - %s%s",
	"menu_done":          "0. Done with %s",
	"enter_choice":       "Enter your choice: ",
	"enter_quantity":     "Enter quantity: ",
	"invalid_input":      "Invalid input. Please enter a valid number.",
	"invalid_choice":     "Invalid choice. Please try again.",
	"invalid_quantity":   "Quantity must be at least 1.",
	"quantity_too_large": "Quantity must be at most %d per item.",
	"item_added":         "%s added to order.",
	"category_done":      "Finished ordering %s.",
}

// T returns the message for key formatted with args. Unknown keys come back as-is.
func T(key string, args ...interface{}) string {
	s, ok := messages[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return s
	}
	return fmt.Sprintf(s, args...)
}
