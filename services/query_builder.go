package services

import (
	"fmt"
	"strings"
)

// postColumns is the joined column list every post query selects. The
// creator columns are aliased so rows scan into postRow by name.
const postColumns = "p.id, p.title, p.body, p.created_by, p.slug, p.photo_url, " +
	"p.created_at, p.updated_at, p.deleted_at, p.published, p.view_count, p.like_count, " +
	"u.id AS creator_id, u.username AS creator_username"

const postJoins = "FROM posts p INNER JOIN users u ON p.created_by = u.id"

const tagJoins = postJoins +
	" INNER JOIN posts_to_tags ptt ON p.id = ptt.post_id" +
	" INNER JOIN tags t ON ptt.tag_id = t.id"

// visiblePosts is the predicate every read shares: unpublished and
// soft-deleted rows never leave this layer.
const visiblePosts = "p.published = true AND p.deleted_at IS NULL"

const searchPredicate = "(p.title ILIKE ? OR p.body ILIKE ? OR u.username ILIKE ?)"

const randomPostsSQL = "SELECT " + postColumns + " " + postJoins +
	" WHERE " + visiblePosts +
	" ORDER BY RANDOM() LIMIT ?"

const postBySlugSQL = "SELECT " + postColumns + " " + postJoins +
	" WHERE u.username = ? AND p.slug = ? AND " + visiblePosts

const postTagsSQL = "SELECT ptt.post_id, t.id, t.name, t.created_at" +
	" FROM tags t INNER JOIN posts_to_tags ptt ON t.id = ptt.tag_id" +
	" WHERE ptt.post_id IN ? ORDER BY t.name"

// likeEscaper rewrites LIKE metacharacters so user-supplied search text
// matches literally. The escape character itself goes first.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

type sqlQuery struct {
	SQL  string
	Args []interface{}
}

// listQueries pairs the count query with the data query for one
// listing call. Both carry the identical filter predicate so the total
// always reflects the same row set the page was cut from.
type listQueries struct {
	Count sqlQuery
	Data  sqlQuery
}

// buildListQueries produces the count and data queries for the plain
// post listing. Pure: no I/O, placeholders only, the sort field has
// already passed the whitelist by the time it is interpolated.
func buildListQueries(p ListParams) listQueries {
	p = p.normalized()

	where := "WHERE " + visiblePosts
	var filterArgs []interface{}
	if p.Search != "" {
		pattern := "%" + escapeLikePattern(p.Search) + "%"
		where += " AND " + searchPredicate
		filterArgs = append(filterArgs, pattern, pattern, pattern)
	}

	count := sqlQuery{
		SQL:  "SELECT COUNT(*) " + postJoins + " " + where,
		Args: filterArgs,
	}
	data := sqlQuery{
		SQL: fmt.Sprintf("SELECT %s %s %s ORDER BY p.%s %s LIMIT ? OFFSET ?",
			postColumns, postJoins, where, p.OrderBy, p.OrderDirection.SQL()),
		Args: append(append([]interface{}{}, filterArgs...), p.Limit, p.Offset),
	}

	return listQueries{Count: count, Data: data}
}

// buildTagListQueries is the tag-filtered variant. The join through
// posts_to_tags can multiply rows, so both queries deduplicate by post
// identity.
func buildTagListQueries(tagName string, p ListParams) listQueries {
	p = p.normalized()

	where := "WHERE t.name = ? AND " + visiblePosts
	filterArgs := []interface{}{tagName}
	if p.Search != "" {
		pattern := "%" + escapeLikePattern(p.Search) + "%"
		where += " AND " + searchPredicate
		filterArgs = append(filterArgs, pattern, pattern, pattern)
	}

	count := sqlQuery{
		SQL:  "SELECT COUNT(DISTINCT p.id) " + tagJoins + " " + where,
		Args: filterArgs,
	}
	data := sqlQuery{
		SQL: fmt.Sprintf("SELECT DISTINCT %s %s %s ORDER BY p.%s %s LIMIT ? OFFSET ?",
			postColumns, tagJoins, where, p.OrderBy, p.OrderDirection.SQL()),
		Args: append(append([]interface{}{}, filterArgs...), p.Limit, p.Offset),
	}

	return listQueries{Count: count, Data: data}
}
