package handler

import "net/http"

type folderRequest struct {
	Name string `json:"name"`
}

func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	var req folderRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	folder, err := h.services.CreateFolder(r.Context(), userID(r), req.Name)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, folder)
}

func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.services.Folders(r.Context(), userID(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, folders)
}

func (h *Handler) getFolder(w http.ResponseWriter, r *http.Request) {
	folder, err := h.services.Folder(r.Context(), userID(r), r.PathValue("id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, folder)
}

func (h *Handler) renameFolder(w http.ResponseWriter, r *http.Request) {
	var req folderRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	folder, err := h.services.RenameFolder(r.Context(), userID(r), r.PathValue("id"), req.Name)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, folder)
}

func (h *Handler) deleteFolder(w http.ResponseWriter, r *http.Request) {
	if err := h.services.DeleteFolder(r.Context(), userID(r), r.PathValue("id")); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) folderFlashcards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.services.FolderFlashcards(r.Context(), userID(r), r.PathValue("id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cards)
}
