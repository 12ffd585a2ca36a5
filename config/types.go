package config

type config struct {
	Server  server  `yaml:"server" mapstructure:"server"`
	Mysql   mysql   `yaml:"mysql" mapstructure:"mysql"`
	Redis   redis   `yaml:"redis" mapstructure:"redis"`
	Minio   minio   `yaml:"minio" mapstructure:"minio"`
	Session session `yaml:"session" mapstructure:"session"`
	Upload  upload  `yaml:"upload" mapstructure:"upload"`
}

type server struct {
	Addr   string `yaml:"addr"`
	WsAddr string `yaml:"ws_addr"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type minio struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
	PublicURL string `yaml:"public_url"`
}

type session struct {
	CookieDomain string `yaml:"cookie_domain"`
}

type upload struct {
	TmpDir string `yaml:"tmp_dir"`
}
