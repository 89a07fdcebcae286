package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mate-labs/matepr/internal/domain/models"
)

// ShowChangedFilesTree prints the PR's changed files in tree format with
// per-file stats.
func ShowChangedFilesTree(files []models.ChangedFile, headerMessage string) {
	if len(files) == 0 {
		return
	}

	fmt.Printf("\n%s\n", headerMessage)
	tree := buildFileTree(files)
	printTree(tree, "", true)
	fmt.Println()
}

// treeNode represents a node in the file tree
type treeNode struct {
	name     string
	isFile   bool
	file     *models.ChangedFile
	children map[string]*treeNode
}

// buildFileTree builds a directory tree
func buildFileTree(files []models.ChangedFile) *treeNode {
	root := &treeNode{
		name:     "",
		children: make(map[string]*treeNode),
	}

	for i := range files {
		file := &files[i]
		parts := strings.Split(file.Path, "/")
		current := root

		for j, part := range parts {
			isFile := j == len(parts)-1

			if current.children[part] == nil {
				current.children[part] = &treeNode{
					name:     part,
					isFile:   isFile,
					children: make(map[string]*treeNode),
				}

				if isFile {
					current.children[part].file = file
				}
			}
			current = current.children[part]
		}
	}
	return root
}

// printTree prints the tree recursively
func printTree(node *treeNode, prefix string, isLast bool) {
	if node.name != "" {
		connector := "├── "
		if isLast {
			connector = "└── "
		}

		name := node.name
		if !node.isFile {
			name = Info.Sprint(name + "/")
		}

		stats := ""
		if node.isFile && node.file != nil {
			statsColor := color.New(color.FgGreen)
			if node.file.Deletions > node.file.Additions {
				statsColor = color.New(color.FgRed)
			}
			stats = statsColor.Sprintf(" (+%d, -%d)", node.file.Additions, node.file.Deletions)
		}

		fmt.Printf("%s%s%s%s\n", prefix, connector, name, stats)
	}

	childPrefix := prefix
	if node.name != "" {
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}
	}

	var keys []string
	for key := range node.children {
		keys = append(keys, key)
	}

	sortFileTree(keys, node.children)

	for i, key := range keys {
		child := node.children[key]
		isLastChild := i == len(keys)-1
		printTree(child, childPrefix, isLastChild)
	}
}

// sortFileTree sorts the keys: directories first, then files
func sortFileTree(keys []string, nodes map[string]*treeNode) {
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			node1 := nodes[keys[i]]
			node2 := nodes[keys[j]]

			if node1.isFile && !node2.isFile {
				keys[i], keys[j] = keys[j], keys[i]
			} else if node1.isFile == node2.isFile {
				if keys[i] > keys[j] {
					keys[i], keys[j] = keys[j], keys[i]
				}
			}
		}
	}
}
