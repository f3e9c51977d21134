package catalog

// BuilderOption configures a Builder
type BuilderOption func(*Builder) error

// WithColIndexes sets the product table columns directly
func WithColIndexes(nameIdx, legacyImageIdx, newImageIdx, priceIdx int) BuilderOption {
	return func(b *Builder) error {
		if nameIdx < 0 {
			return errNameColumnIndexNotSpecified
		}
		if legacyImageIdx < 0 || newImageIdx < 0 {
			return errImageColumnIndexNotSpecified
		}
		if priceIdx < 0 {
			return errPriceColumnIndexNotSpecified
		}
		seen := map[int]bool{}
		for _, idx := range []int{nameIdx, legacyImageIdx, newImageIdx, priceIdx} {
			if seen[idx] {
				return errColumnIndexesEqual
			}
			seen[idx] = true
		}
		b.nameIdx = nameIdx
		b.legacyImageIdx = legacyImageIdx
		b.newImageIdx = newImageIdx
		b.priceIdx = priceIdx
		return nil
	}
}

// WithDriveThumbnails rewrites Google Drive share links to thumbnail links
func WithDriveThumbnails() BuilderOption {
	return func(b *Builder) error {
		b.imageLink = DriveThumbnail
		return nil
	}
}

// WithExcludedNames adds header captions that must never become products in
// the embedded-row mode
func WithExcludedNames(names ...string) BuilderOption {
	return func(b *Builder) error {
		b.excluded = append(b.excluded, names...)
		return nil
	}
}
