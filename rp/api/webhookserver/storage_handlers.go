package webhookserver

import (
	"net/http"
	"path"

	"code.cloudfoundry.org/lager/v3"
	"github.com/ae-scientist/tower/rp"
	"github.com/ae-scientist/tower/rp/db"
	"github.com/ae-scientist/tower/rp/objectstore"
)

// Object-store proxy endpoints. The pod never holds storage credentials;
// it asks for presigned URLs and uploads directly.

func (s *Server) artifactKey(runID, artifactType, filename string) string {
	if artifactType == "" {
		artifactType = "misc"
	}
	return objectstore.ArtifactKey(runID, artifactType, path.Base(filename))
}

func (s *Server) PresignUploadHandler() http.Handler {
	return s.ingest("presigned-upload-url", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var req rp.PresignUploadRequest
		if err := decodeBody(r, &req); err != nil || req.Filename == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		s3Key := s.artifactKey(run.ID(), req.ArtifactType, req.Filename)
		url, err := s.store.PresignUpload(r.Context(), s3Key, req.ContentType, req.Metadata)
		if err != nil {
			logger.Error("failed-to-presign-upload", err, lager.Data{"key": s3Key})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(logger, w, http.StatusOK, rp.PresignUploadResponse{
			UploadURL: url,
			S3Key:     s3Key,
			ExpiresIn: int(objectstore.PresignTTL.Seconds()),
		})
	})
}

func (s *Server) ArtifactExistsHandler() http.Handler {
	return s.ingest("artifact-exists", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var req struct {
			ArtifactType string `json:"artifact_type"`
			Filename     string `json:"filename"`
			S3Key        string `json:"s3_key,omitempty"`
		}
		if err := decodeBody(r, &req); err != nil || (req.Filename == "" && req.S3Key == "") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		s3Key := req.S3Key
		if s3Key == "" {
			s3Key = s.artifactKey(run.ID(), req.ArtifactType, req.Filename)
		}

		exists, size, err := s.store.Exists(r.Context(), s3Key)
		if err != nil {
			logger.Error("failed-to-check-artifact", err, lager.Data{"key": s3Key})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(logger, w, http.StatusOK, rp.ArtifactExistsResponse{
			Exists: exists,
			S3Key:  s3Key,
			Size:   size,
		})
	})
}

func (s *Server) MultipartInitHandler() http.Handler {
	return s.ingest("multipart-upload-init", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var req rp.MultipartInitRequest
		if err := decodeBody(r, &req); err != nil || req.Filename == "" || req.Parts < 1 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		s3Key := s.artifactKey(run.ID(), req.ArtifactType, req.Filename)
		uploadID, partURLs, err := s.store.MultipartInit(r.Context(), s3Key, req.ContentType, req.Parts)
		if err != nil {
			logger.Error("failed-to-init-multipart", err, lager.Data{"key": s3Key})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(logger, w, http.StatusOK, rp.MultipartInitResponse{
			UploadID: uploadID,
			S3Key:    s3Key,
			PartURLs: partURLs,
		})
	})
}

func (s *Server) MultipartCompleteHandler() http.Handler {
	return s.ingest("multipart-upload-complete", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var req rp.MultipartCompleteRequest
		if err := decodeBody(r, &req); err != nil || req.UploadID == "" || req.S3Key == "" || len(req.Parts) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err := s.store.MultipartComplete(r.Context(), req.S3Key, req.UploadID, req.Parts)
		if err != nil {
			logger.Error("failed-to-complete-multipart", err, lager.Data{"key": req.S3Key})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *Server) MultipartAbortHandler() http.Handler {
	return s.ingest("multipart-upload-abort", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var req rp.MultipartAbortRequest
		if err := decodeBody(r, &req); err != nil || req.UploadID == "" || req.S3Key == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err := s.store.MultipartAbort(r.Context(), req.S3Key, req.UploadID)
		if err != nil {
			logger.Error("failed-to-abort-multipart", err, lager.Data{"key": req.S3Key})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// ParentRunFilesHandler lets a child run pull artifacts produced by the run
// it was forked from.
func (s *Server) ParentRunFilesHandler() http.Handler {
	return s.ingest("parent-run-files", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		parentID := run.ParentRunID()
		if parentID == "" {
			writeJSON(logger, w, http.StatusOK, []rp.StoredFile{})
			return
		}

		files, err := s.store.List(r.Context(), objectstore.RunPrefix(parentID))
		if err != nil {
			logger.Error("failed-to-list-parent-files", err, lager.Data{"parent": parentID})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		for i := range files {
			url, err := s.store.PresignDownload(r.Context(), files[i].Key)
			if err != nil {
				logger.Error("failed-to-presign-download", err, lager.Data{"key": files[i].Key})
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			files[i].DownloadURL = url
		}

		writeJSON(logger, w, http.StatusOK, files)
	})
}

func (s *Server) ListDatasetsHandler() http.Handler {
	return s.ingest("list-datasets", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		files, err := s.store.List(r.Context(), objectstore.DatasetPrefix(run.UserID()))
		if err != nil {
			logger.Error("failed-to-list-datasets", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		for i := range files {
			url, err := s.store.PresignDownload(r.Context(), files[i].Key)
			if err != nil {
				logger.Error("failed-to-presign-download", err, lager.Data{"key": files[i].Key})
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			files[i].DownloadURL = url
		}

		writeJSON(logger, w, http.StatusOK, files)
	})
}

func (s *Server) DatasetUploadURLHandler() http.Handler {
	return s.ingest("dataset-upload-url", func(logger lager.Logger, run db.Run, w http.ResponseWriter, r *http.Request) {
		var req struct {
			Filename    string `json:"filename"`
			ContentType string `json:"content_type,omitempty"`
		}
		if err := decodeBody(r, &req); err != nil || req.Filename == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		s3Key := objectstore.DatasetKey(run.UserID(), path.Base(req.Filename))
		url, err := s.store.PresignUpload(r.Context(), s3Key, req.ContentType, nil)
		if err != nil {
			logger.Error("failed-to-presign-dataset-upload", err, lager.Data{"key": s3Key})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(logger, w, http.StatusOK, rp.PresignUploadResponse{
			UploadURL: url,
			S3Key:     s3Key,
			ExpiresIn: int(objectstore.PresignTTL.Seconds()),
		})
	})
}
