package main

import (
	"fmt"

	"github.com/fwojciec/notionmark"
)

// Run executes the tags command.
func (c *TagsCmd) Run(deps *Dependencies) error {
	if err := requireDatabase("NOTION_TAG_DATABASE_ID", deps.TagDatabaseID, deps); err != nil {
		return err
	}

	tags, err := deps.Tags.FindTags(deps.Ctx, deps.TagDatabaseID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notionmark.ErrorMessage(err))
		return err
	}

	if len(tags) == 0 {
		fmt.Fprintln(deps.Stdout, "No tags found.")
		return nil
	}

	for _, tag := range tags {
		name := tag.Name
		if tag.Icon != "" && !isURL(tag.Icon) {
			name = tag.Icon + " " + name
		}
		fmt.Fprintf(deps.Stdout, "%s  %s\n", tag.ID, name)
	}

	return nil
}

// resolveTag returns the tag ID for value, which is either a tag ID or the
// exact name of a tag in the tag database.
func resolveTag(deps *Dependencies, value string) (string, error) {
	if id, err := notionmark.ParseID(value); err == nil {
		return id, nil
	}
	if deps.Tags == nil || deps.TagDatabaseID == "" {
		return "", notionmark.Errorf(notionmark.EINVALID,
			"tag %q is not an ID; looking up tags by name needs NOTION_TOKEN and NOTION_TAG_DATABASE_ID", value)
	}

	tags, err := deps.Tags.FindTags(deps.Ctx, deps.TagDatabaseID)
	if err != nil {
		return "", err
	}
	tag, err := notionmark.FindTagByName(tags, value)
	if err != nil {
		return "", err
	}
	return tag.ID, nil
}

// requireDatabase reports a missing database ID setting.
func requireDatabase(env, id string, deps *Dependencies) error {
	if id != "" {
		return nil
	}
	fmt.Fprintf(deps.Stderr, "error: %s not set\n", env)
	return notionmark.Errorf(notionmark.EINVALID, "%s not set", env)
}

func isURL(s string) bool {
	return notionmark.ValidateURL(s) == nil
}
