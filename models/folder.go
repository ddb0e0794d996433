// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NoFolderID is the identifier of the sentinel folder logins fall into when
// they reference no folder.
const NoFolderID int64 = 0

// Folder groups logins.
type Folder struct {
	ID   int64
	Name string
}

// NoFolder is the sentinel folder that is always offered first.
var NoFolder = Folder{ID: NoFolderID, Name: "No folder"}
