// AngelaMos | 2026
// dto.go

package document

type FileListResponse struct {
	Files []File `json:"files"`
	Count int    `json:"count"`
}

func ToFileListResponse(files []File) FileListResponse {
	if files == nil {
		files = []File{}
	}
	return FileListResponse{
		Files: files,
		Count: len(files),
	}
}
