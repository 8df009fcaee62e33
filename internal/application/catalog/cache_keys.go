package catalog

import "fmt"

const (
	cacheKeyEventSnapshot = "party:events:snapshot"
	cacheKeyClubSnapshot  = "party:clubs:snapshot"
)

func cacheKeyEventDetails(id string) string {
	return fmt.Sprintf("party:event:%s", id)
}

func cacheKeyClubDetails(id string) string {
	return fmt.Sprintf("party:club:%s", id)
}
