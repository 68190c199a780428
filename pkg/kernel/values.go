package kernel

type JobTitle string

type JobDescription string

type JobRequirement string

type JobPosition string

type JobBenefit string

type Email string

func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool  { return string(e) == "" }

type Phone string

func (p Phone) String() string { return string(p) }

type FirstName string

type LastName string

type BucketURL string

func (b BucketURL) String() string { return string(b) }
func (b BucketURL) IsEmpty() bool  { return string(b) == "" }

// JobEmbedding is the vector representation of a job posting used for
// semantic recommendations.
type JobEmbedding []float32

// ProfileEmbedding is the vector representation of a candidate profile.
type ProfileEmbedding []float32
