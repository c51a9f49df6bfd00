package types

// EpisodioRequest is the body accepted by episode create and update
type EpisodioRequest struct {
	Titulo    string `json:"titulo" form:"titulo" binding:"required" example:"NerdCast 961 - Qual é a pauta?"`
	Descricao string `json:"descricao" form:"descricao" binding:"required" example:"Sem pauta definida"`
	Capa      string `json:"capa" form:"capa" example:"https://example.com/capa.jpg"`
	Audio     string `json:"audio" form:"audio" binding:"required" example:"https://example.com/audio.mp3"`
}

// ProfileRequest is the body accepted by profile create
type ProfileRequest struct {
	Nome      string `json:"nome" form:"nome" binding:"required" example:"NerdCast"`
	Autor     string `json:"autor" form:"autor" binding:"required" example:"Jovem Nerd"`
	Descricao string `json:"descricao" form:"descricao" binding:"required" example:"O mundo vira piada no Jovem Nerd"`
	Capa      string `json:"capa" form:"capa" example:"https://example.com/nc-feed.jpg"`
}

// FeedImportRequest names the feed to import
type FeedImportRequest struct {
	Feed string `json:"feed" form:"feed" binding:"required,url" example:"https://api.jovemnerd.com.br/feed-nerdcast/"`
}
