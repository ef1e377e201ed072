// Package docs embeds the user documentation, one markdown file per topic.
package docs

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Readme is the topic shown by default. It lists every other topic.
const Readme = "readme"

// listed matches a topic entry of the readme: "* name: description".
var listed = regexp.MustCompile(`^\*\s+([^:\s]+):`)

// GetTopic returns the content of a documentation topic.
func GetTopic(topic string) (string, error) {
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found, use one of %s: %w", topic, strings.Join(append([]string{Readme}, mustTopics()...), ", "), err)
	}
	return string(content), nil
}

// GetTopics returns the content of topics, concatenated. "*" stands for the
// readme followed by every topic.
func GetTopics(topics ...string) (string, error) {
	var b bytes.Buffer
	for _, topic := range topics {
		names := []string{topic}
		if topic == "*" {
			all, err := GetAllTopics()
			if err != nil {
				return "", err
			}
			names = append([]string{Readme}, all...)
		}
		for _, name := range names {
			content, err := GetTopic(name)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// GetAllTopics returns the topics listed in the readme, in order.
func GetAllTopics() ([]string, error) {
	content, err := docs.ReadFile(Readme + ".md")
	if err != nil {
		return nil, err
	}
	var topics []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		if m := listed.FindStringSubmatch(scanner.Text()); m != nil {
			topics = append(topics, m[1])
		}
	}
	return topics, scanner.Err()
}

func mustTopics() []string {
	topics, _ := GetAllTopics()
	return topics
}
