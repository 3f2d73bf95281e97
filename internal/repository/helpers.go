package repository

import (
	"strings"

	"gorm.io/gorm"
)

// affected turns a zero-row write into gorm.ErrRecordNotFound
func affected(result *gorm.DB) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// likePattern wraps a search term for ILIKE. Wildcards in the term match literally.
func likePattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}
