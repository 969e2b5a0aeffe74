package remote

type EmptyResponse struct {
}

type PushFrameRequest struct {
	// Frame is PNG-encoded to keep the rpc payload small over slow links.
	Frame []byte
}
