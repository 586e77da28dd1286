package dao

// The documents mirror the schema generated for the managed backend.
// Field names are fixed by that schema.

const noteFields = `
      id
      name
      description
      image
      createdAt
      updatedAt`

const (
	opListNotes  = "ListNotes"
	opCreateNote = "CreateNote"
	opDeleteNote = "DeleteNote"
)

const listNotesQuery = `query ListNotes($filter: ModelNoteFilterInput, $limit: Int, $nextToken: String) {
  listNotes(filter: $filter, limit: $limit, nextToken: $nextToken) {
    items {` + noteFields + `
    }
    nextToken
  }
}`

const createNoteMutation = `mutation CreateNote($input: CreateNoteInput!, $condition: ModelNoteConditionInput) {
  createNote(input: $input, condition: $condition) {` + noteFields + `
  }
}`

const deleteNoteMutation = `mutation DeleteNote($input: DeleteNoteInput!, $condition: ModelNoteConditionInput) {
  deleteNote(input: $input, condition: $condition) {` + noteFields + `
  }
}`

// noteResult 与 GraphQL 返回的笔记字段一一对应
type noteResult struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type listNotesResult struct {
	ListNotes struct {
		Items     []*noteResult `json:"items"`
		NextToken *string       `json:"nextToken"`
	} `json:"listNotes"`
}

type createNoteResult struct {
	CreateNote *noteResult `json:"createNote"`
}

type deleteNoteResult struct {
	DeleteNote *noteResult `json:"deleteNote"`
}
