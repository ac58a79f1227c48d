package htmlutil

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// TextBefore collects the text of the node up to (not including) its
// first descendant with the given tag.
func TextBefore(node *html.Node, tag string) string {
	var buffer bytes.Buffer
	textBeforeRecursive(node, tag, &buffer)
	return buffer.String()
}

func textBeforeRecursive(node *html.Node, tag string, buffer *bytes.Buffer) bool {
	if node == nil {
		return true
	}
	if node.Type == html.ElementNode && node.Data == tag {
		return false
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return true
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if !textBeforeRecursive(child, tag, buffer) {
			return false
		}
	}
	return true
}

// FirstHref returns the href of the first anchor inside the node.
func FirstHref(node *html.Node) string {
	if node == nil {
		return ""
	}
	if node.Type == html.ElementNode && node.Data == "a" {
		for _, a := range node.Attr {
			if a.Key == "href" {
				return a.Val
			}
		}
		return ""
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if href := FirstHref(child); href != "" {
			return href
		}
	}
	return ""
}

// AnchorText returns the text of the first anchor inside the node,
// falling back to the node's own text when no anchor exists.
func AnchorText(node *html.Node) string {
	if a := findTag(node, "a"); a != nil {
		return strings.TrimSpace(GetText(a))
	}
	return strings.TrimSpace(GetText(node))
}

func findTag(node *html.Node, tag string) *html.Node {
	if node == nil {
		return nil
	}
	if node.Type == html.ElementNode && node.Data == tag {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findTag(child, tag); found != nil {
			return found
		}
	}
	return nil
}
