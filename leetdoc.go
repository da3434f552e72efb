// Package leetdoc captures accepted solutions from rendered LeetCode
// submission pages and assembles them into a problem set document.
// The core turns an arbitrarily rendered code block into faithful plain
// text, identifies its language, and normalizes the problem title.
//
// This package contains domain types, interfaces, and the pure text
// normalization rules, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., sqlite/, goquery/, rod/).
package leetdoc
